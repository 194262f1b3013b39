package game

import (
	"regexp"

	petname "github.com/dustinkirkland/golang-petname"
)

const MaxNicknameLength = 16

var nickRegexp = regexp.MustCompile(`[^a-zA-Z0-9_\-!@#$%^&*+=,./]+`)

// Nickname strips characters that cannot be drawn and truncates the result.
// An empty nickname is replaced with a generated one.
func Nickname(nick string) string {
	nick = nickRegexp.ReplaceAllString(nick, "")
	if len(nick) > MaxNicknameLength {
		nick = nick[:MaxNicknameLength]
	} else if nick == "" {
		nick = RandomNickname()
	}

	return nick
}

// RandomNickname returns a two word name such as "happy-otter".
func RandomNickname() string {
	nick := petname.Generate(2, "-")
	if len(nick) > MaxNicknameLength {
		nick = petname.Generate(1, "")
	}
	if len(nick) > MaxNicknameLength {
		nick = nick[:MaxNicknameLength]
	}

	return nick
}
