package messaging

import (
	"testing"

	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
)

func newBuilder() *LinkBuilder {
	return NewLinkBuilder("https://loja.example.com/", config.MessagingConfig{Scheme: "whatsapp", CountryCode: "55"})
}

func TestShareURL(t *testing.T) {
	b := newBuilder()

	assert.Equal(t, "https://loja.example.com/s/abc123", b.ShareURL(entities.ShareKindOrder, "abc123"))
	assert.Equal(t, "https://loja.example.com/vs/xyz", b.ShareURL(entities.ShareKindResale, "xyz"))
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"(11) 98765-4321", "5511987654321"},
		{"11 3456-7890", "551134567890"},
		{"+55 11 98765-4321", "5511987654321"},
		{"011987654321", "5511987654321"},
		{"", ""},
		{"sem telefone", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.raw, "55"))
		})
	}
	assert.Equal(t, "11987654321", NormalizePhone("11987654321", ""))
}

func TestDeepLink(t *testing.T) {
	b := newBuilder()
	msg := OrderMessage("Ana", "https://loja.example.com/s/abc")

	got := b.DeepLink(msg, "(11) 98765-4321")
	assert.Equal(t,
		"whatsapp://send?text=Ol%C3%A1%20Ana%21%20Segue%20sua%20OS%3A%0A%0Ahttps%3A%2F%2Floja.example.com%2Fs%2Fabc&to=5511987654321",
		got)

	noPhone := b.DeepLink("a&b", "")
	assert.Equal(t, "whatsapp://send?text=a%26b", noPhone)
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "Olá! Segue sua OS:\n\nL", OrderMessage("  ", "L"))
	assert.Equal(t, "Olá! Segue o comprovante de venda:\n\nL", ResaleMessage("L"))
}
