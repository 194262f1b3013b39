package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNickname(t *testing.T) {
	assert.Equal(t, "earther", Nickname("earther"))
	assert.Equal(t, "bobbytables", Nickname("bobby tables;"))
	assert.Equal(t, strings.Repeat("a", MaxNicknameLength), Nickname(strings.Repeat("a", 40)))

	nick := Nickname(" \t")
	assert.NotEmpty(t, nick)
	assert.LessOrEqual(t, len(nick), MaxNicknameLength)
	assert.Equal(t, nick, Nickname(nick))
}
