package sms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		body string
		want Kind
	}{
		{body: "🛵", want: KindSignal},
		{body: "ride the 🛵 please", want: KindSignal},
		{body: "TEST 🛵", want: KindSignal},
		{body: "🛵🛵🛵", want: KindSignal},
		{body: "test", want: KindTest},
		{body: "TEST please", want: KindTest},
		{body: "Testing 123", want: KindTest},
		{body: "contest", want: KindTest},
		{body: "hey there", want: KindUnknown},
		{body: "hello", want: KindUnknown},
		{body: "", want: KindUnknown},
		{body: "🚲", want: KindUnknown},
		{body: "t e s t", want: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.body))
		})
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	for _, body := range []string{"test", "TEST", "Test", "tEsT"} {
		assert.Equal(t, KindTest, Classify(body), body)
	}
}

func TestScooterEmojiCodePoint(t *testing.T) {
	runes := []rune(ScooterEmoji)
	assert.Len(t, runes, 1)
	assert.Equal(t, rune(0x1F6F5), runes[0])
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "signal", KindSignal.String())
	assert.Equal(t, "test", KindTest.String())
	assert.Equal(t, "unknown", KindUnknown.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
