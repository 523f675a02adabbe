package service

import (
	"strings"
	"testing"

	"github.com/tikprofil/tikprofil-api/internal/models"
)

func TestBuildWhatsAppLink(t *testing.T) {
	business := &models.Business{WhatsappPhone: "+90 555 111 22 33"}
	order := &models.Order{
		OrderNo:     "TP20260829120000123456",
		Currency:    "TRY",
		TotalAmount: models.NewMoneyFromFloat(240),
		Items: []models.OrderItem{
			{ProductName: "Adana Durum", SizeName: "Bucuk", Quantity: 2},
		},
	}

	link := BuildWhatsAppLink(business, order)
	if !strings.HasPrefix(link, "https://wa.me/905551112233?text=") {
		t.Fatalf("link should target the normalized number, got %s", link)
	}
	if !strings.Contains(link, "TP20260829120000123456") {
		t.Fatalf("link should carry the order no, got %s", link)
	}
	if strings.Contains(link, " ") {
		t.Fatalf("message must be query-escaped, got %s", link)
	}
}

func TestBuildWhatsAppLinkWithoutNumber(t *testing.T) {
	business := &models.Business{}
	order := &models.Order{OrderNo: "TP1", Currency: "TRY"}

	if link := BuildWhatsAppLink(business, order); link != "" {
		t.Fatalf("no number should yield empty link, got %s", link)
	}
}

func TestNormalizePhoneDigits(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "formatted", input: "+90 (555) 111-22-33", want: "905551112233"},
		{name: "plain", input: "905551112233", want: "905551112233"},
		{name: "empty", input: "", want: ""},
		{name: "letters only", input: "yok", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizePhoneDigits(tc.input); got != tc.want {
				t.Fatalf("want %q got %q", tc.want, got)
			}
		})
	}
}
