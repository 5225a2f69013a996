package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"metalfolio/app/middleware"
	m "metalfolio/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sendRequest(app *fiber.App, path string, method string, body any, response any) error {

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d: %s", resp.StatusCode, msg)
	}

	if response != nil {
		return json.NewDecoder(resp.Body).Decode(response)
	}
	return nil
}

func TestAssetHandler(t *testing.T) {

	app := fiber.New()
	middleware.SetupMiddleware(app)

	retrieverMock := &AssetRetrieverMock{assets: map[m.Category][]m.Asset{}}
	writerMock := &AssetWriterMock{}
	sourceMock := &SourceDescriberMock{ids: []string{"btmc", "phuquy"}}

	h := NewAssetHandler(retrieverMock, writerMock, sourceMock)
	h.InitRoute(app)

	t.Run("assets grouped by category", func(t *testing.T) {
		retrieverMock.assets = map[m.Category][]m.Asset{
			m.Existing: {
				{ID: "a1", Name: "wedding ring", Metal: m.Gold, Quantity: decimal.NewFromInt(2),
					Unit: m.Chi, SourceRef: "btmc", Category: m.Existing},
			},
		}

		resp := make(map[string][]m.Asset)
		err := sendRequest(app, "/assets", "GET", nil, &resp)

		assert.NoError(t, err)
		assert.Len(t, resp[string(m.Existing)], 1)
		assert.Equal(t, "wedding ring", resp[string(m.Existing)][0].Name)
	})

	t.Run("broken category file keeps the healthy one", func(t *testing.T) {
		retrieverMock.err = &m.StorageError{Op: "decode", Path: "investment_assets.json", Err: assert.AnError}
		retrieverMock.failOn = m.Investment

		resp := make(map[string][]m.Asset)
		err := sendRequest(app, "/assets", "GET", nil, &resp)

		assert.NoError(t, err)
		assert.Len(t, resp[string(m.Existing)], 1)
		assert.Empty(t, resp[string(m.Investment)])

		retrieverMock.err = nil
		retrieverMock.failOn = ""
	})

	t.Run("assets of one category", func(t *testing.T) {
		var resp []m.Asset
		err := sendRequest(app, "/assets/existing", "GET", nil, &resp)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		err := sendRequest(app, "/assets/retirement", "GET", nil, nil)
		assert.Error(t, err)
	})

	t.Run("add existing asset", func(t *testing.T) {
		param := AddAssetReq{
			Name:      "gold bar",
			Metal:     "gold",
			Quantity:  1.5,
			Unit:      "luong",
			SourceRef: "btmc",
			Category:  "existing",
		}
		err := sendRequest(app, "/assets/", "POST", param, nil)

		assert.NoError(t, err)
		assert.Len(t, writerMock.saved, 1)
		assert.NotEmpty(t, writerMock.saved[0].ID)
		assert.False(t, writerMock.saved[0].CreatedAt.IsZero())
	})

	t.Run("add investment asset", func(t *testing.T) {
		writerMock.saved = nil
		param := AddAssetReq{
			Name:          "silver stash",
			Metal:         "silver",
			Quantity:      2,
			Unit:          "kg",
			SourceRef:     "phuquy",
			Category:      "investment",
			PurchasePrice: 5000000,
			PurchaseDate:  "2024-06-15",
		}
		err := sendRequest(app, "/assets/", "POST", param, nil)

		assert.NoError(t, err)
		assert.Len(t, writerMock.saved, 1)
		saved := writerMock.saved[0]
		assert.True(t, saved.PurchasePrice.Equal(decimal.NewFromInt(5000000)))
		assert.Equal(t, "2024-06-15", saved.PurchaseDate.String())
	})

	t.Run("investment without purchase info rejected", func(t *testing.T) {
		writerMock.saved = nil
		param := AddAssetReq{
			Name:      "silver stash",
			Metal:     "silver",
			Quantity:  2,
			Unit:      "kg",
			SourceRef: "phuquy",
			Category:  "investment",
		}
		err := sendRequest(app, "/assets/", "POST", param, nil)

		assert.Error(t, err)
		assert.Empty(t, writerMock.saved)
	})

	t.Run("unknown source reference rejected", func(t *testing.T) {
		param := AddAssetReq{
			Name:      "gold bar",
			Metal:     "gold",
			Quantity:  1,
			Unit:      "chi",
			SourceRef: "doji",
			Category:  "existing",
		}
		err := sendRequest(app, "/assets/", "POST", param, nil)
		assert.Error(t, err)
	})

	t.Run("update asset", func(t *testing.T) {
		writerMock.saved = nil
		param := UpdateAssetReq{
			ID: "a1",
			AddAssetReq: AddAssetReq{
				Name:      "wedding ring",
				Metal:     "gold",
				Quantity:  3,
				Unit:      "chi",
				SourceRef: "btmc",
				Category:  "existing",
			},
		}
		err := sendRequest(app, "/assets/", "PUT", param, nil)

		assert.NoError(t, err)
		assert.Len(t, writerMock.saved, 1)
		assert.Equal(t, "a1", writerMock.saved[0].ID)
	})

	t.Run("delete asset", func(t *testing.T) {
		param := DeleteAssetReq{ID: "a1", Category: "existing"}
		err := sendRequest(app, "/assets/", "DELETE", param, nil)

		assert.NoError(t, err)
		assert.Equal(t, []string{"a1"}, writerMock.deleted)
	})

	app.Shutdown()
}
