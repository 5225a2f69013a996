package bot

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TeleBot pushes refresh reports to a private chat. Purely a notifier;
// portfolio operations go through the HTTP API.
type TeleBot struct {
	bot     *tgbotapi.BotAPI
	chatId  int64
	updates tgbotapi.UpdatesChannel
}

type TeleBotConfig struct {
	Token  string
	ChatId int64
}

func NewTeleBot(conf *TeleBotConfig) (*TeleBot, error) {

	bot, err := tgbotapi.NewBotAPI(conf.Token)
	if err != nil {
		return nil, err
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	return &TeleBot{
		bot:     bot,
		chatId:  conf.ChatId,
		updates: updates,
	}, nil
}

// Run forwards every message arriving on ch to the chat. Blocks.
func (t TeleBot) Run(ch chan string) {
	t.SendMessage("LAUNCHED SUCCESSFULLY")

	go func() {
		t.communicate(ch)
	}()

	for msg := range ch {
		t.SendMessage(msg)
		log.Println(msg)
	}
}

func (t TeleBot) SendMessage(msg string) {
	t.bot.Send(tgbotapi.NewMessage(t.chatId, msg))
}

func (t TeleBot) communicate(ch chan string) {

	for update := range t.updates {
		if update.Message == nil {
			continue
		}
		txt := update.Message.Text
		if len(txt) == 0 || txt[0] != '/' {
			continue
		}

		switch txt {
		case "/help":
			ch <- `
			POST /prices/refresh
			GET  /prices
			GET  /valuations
			GET  /portfolio/summary
			GET  /assets
			GET  /assets/:category
			GET  /sources
			`
		default:
			ch <- "unknown command: " + txt
		}
	}
}
