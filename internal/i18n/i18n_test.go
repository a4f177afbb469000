package i18n

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTKnownKey(t *testing.T) {
	assert.Equal(t, "The requested record was not found", T(LangEN, "error.not_found"))
	assert.Equal(t, "السجل المطلوب غير موجود", T(LangAR, "error.not_found"))
}

func TestTFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, T(LangEN, "error.store"), T(Language("fr"), "error.store"))
}

func TestTMissingKeyReturnsKey(t *testing.T) {
	assert.Equal(t, "error.does_not_exist", T(LangAR, "error.does_not_exist"))
}

func TestEveryKeyHasBothLanguages(t *testing.T) {
	for key, entry := range messages {
		assert.NotEmpty(t, entry[LangEN], "missing English text for %s", key)
		assert.NotEmpty(t, entry[LangAR], "missing Arabic text for %s", key)
	}
}

func TestFromCtx(t *testing.T) {
	app := fiber.New()
	app.Get("/msg", func(c *fiber.Ctx) error {
		return c.SendString(M(c, "error.not_found"))
	})

	fetch := func(path, headerLang string) string {
		req := httptest.NewRequest("GET", path, nil)
		if headerLang != "" {
			req.Header.Set("X-Language", headerLang)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return string(body)
	}

	assert.Equal(t, T(LangEN, "error.not_found"), fetch("/msg", ""), "default is English")
	assert.Equal(t, T(LangAR, "error.not_found"), fetch("/msg", "ar"))
	assert.Equal(t, T(LangAR, "error.not_found"), fetch("/msg?lang=ar", ""))
	assert.Equal(t, T(LangEN, "error.not_found"), fetch("/msg", "de"), "unsupported language falls back to English")
}
