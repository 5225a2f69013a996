package main

import (
	"metalfolio"
	"metalfolio/app"
	"metalfolio/bot"
	"metalfolio/config"
	"metalfolio/internal/db"
	"metalfolio/scrape"

	"github.com/rs/zerolog"
)

func main() {

	conf, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	level, err := conf.LogLevel()
	if err != nil {
		panic(err)
	}
	zerolog.SetGlobalLevel(level)

	srcConfs, err := conf.SourceConfigs()
	if err != nil {
		panic(err)
	}
	timeout, err := conf.ScrapeTimeout()
	if err != nil {
		panic(err)
	}
	scraper, err := scrape.NewScraper(srcConfs, scrape.WithTimeout(timeout))
	if err != nil {
		panic(err)
	}

	stg, err := db.NewStorage(conf.Storage.Dir)
	if err != nil {
		panic(err)
	}

	// The bot is optional. Without a token the refresh reports simply
	// have nowhere to go.
	botConf, err := conf.BotConfig()
	if err != nil {
		panic(err)
	}

	var teleBot *bot.TeleBot
	var ch chan string
	if botConf != nil {
		teleBot, err = bot.NewTeleBot(botConf)
		if err != nil {
			panic(err)
		}
		ch = make(chan string)
	}

	svc := metalfolio.NewMetalfolio(metalfolio.Config{
		Storage: stg,
		Poller:  scraper,
		Channel: ch,
	})

	if teleBot != nil {
		go func() {
			if err := app.Run(conf.App.Port, stg, svc, scraper); err != nil {
				panic(err)
			}
		}()
		teleBot.Run(ch)
	} else if err := app.Run(conf.App.Port, stg, svc, scraper); err != nil {
		panic(err)
	}
}
