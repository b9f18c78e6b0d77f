package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

var mu sync.Mutex
var seededRand *rand.Rand

func init() {
	seededRand = rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewID generates an id like "tr_1712345678901_417": prefix, unix millis and
// a random suffix. Collisions are improbable, not impossible; nothing here is
// cryptographic.
func NewID(prefix string) string {
	mu.Lock()
	defer mu.Unlock()

	return fmt.Sprintf("%s_%d_%03d", prefix, time.Now().UnixMilli(), seededRand.Intn(1000))
}

const inviteAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewInviteCode returns a 6-character uppercase invitation code.
func NewInviteCode() string {
	mu.Lock()
	defer mu.Unlock()

	var b strings.Builder
	for i := 0; i < 6; i++ {
		b.WriteByte(inviteAlphabet[seededRand.Intn(len(inviteAlphabet))])
	}
	return strings.ToUpper(b.String())
}

// Pick returns a random element of list, or "" for an empty list.
func Pick(list []string) string {
	if len(list) == 0 {
		return ""
	}
	mu.Lock()
	defer mu.Unlock()
	return list[seededRand.Intn(len(list))]
}
