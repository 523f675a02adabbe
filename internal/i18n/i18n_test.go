package i18n

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tikprofil/tikprofil-api/internal/constants"

	"github.com/gin-gonic/gin"
)

func testContext(target string, header map[string]string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestResolveLocale(t *testing.T) {
	cases := []struct {
		name   string
		target string
		header map[string]string
		want   string
	}{
		{name: "lang param wins", target: "/?lang=en-US", header: map[string]string{"Accept-Language": "tr-TR"}, want: constants.LocaleEnUS},
		{name: "lang base tag", target: "/?lang=en", want: constants.LocaleEnUS},
		{name: "accept language", target: "/", header: map[string]string{"Accept-Language": "en-GB,en;q=0.9"}, want: constants.LocaleEnUS},
		{name: "unknown falls back", target: "/", header: map[string]string{"Accept-Language": "de-DE"}, want: constants.LocaleTrTR},
		{name: "no hints", target: "/", want: constants.LocaleTrTR},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := testContext(tc.target, tc.header)
			if got := ResolveLocale(c); got != tc.want {
				t.Fatalf("locale want %s got %s", tc.want, got)
			}
		})
	}

	if got := ResolveLocale(nil); got != constants.LocaleTrTR {
		t.Fatalf("nil context want tr-TR got %s", got)
	}
}

func TestTranslationFallback(t *testing.T) {
	if got := T(constants.LocaleTrTR, "error.coupon_not_found"); got == "error.coupon_not_found" {
		t.Fatalf("known key should translate, got raw key")
	}
	// Unknown locale falls back to en-US.
	if got := T("fr-FR", "error.coupon_not_found"); got != T(constants.LocaleEnUS, "error.coupon_not_found") {
		t.Fatalf("unknown locale should fall back to en-US, got %s", got)
	}
	// Unknown key falls back to the key itself.
	if got := T(constants.LocaleTrTR, "error.does_not_exist"); got != "error.does_not_exist" {
		t.Fatalf("unknown key should fall back to itself, got %s", got)
	}
}

func TestSprintf(t *testing.T) {
	got := Sprintf(constants.LocaleEnUS, "error.rate_limited", 42)
	if got == "error.rate_limited" {
		t.Fatalf("known key should translate, got raw key")
	}
	if !strings.Contains(got, "42") {
		t.Fatalf("formatted message should carry the argument, got %s", got)
	}
}
