package auth

import (
	"crypto/rand"
	"fmt"
	"time"

	"contaflow-bot/internal/domain"
)

const (
	LinkCodeLength = 8
	linkAlphabet   = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NewLinkCode mints a one-time base36 code for userID valid for ttl.
func NewLinkCode(userID string, now time.Time, ttl time.Duration) (domain.LinkCode, error) {
	code, err := randomCode(LinkCodeLength)
	if err != nil {
		return domain.LinkCode{}, err
	}
	return domain.LinkCode{
		UserID:    userID,
		Code:      code,
		ExpiresAt: now.Add(ttl),
	}, nil
}

func randomCode(n int) (string, error) {
	out := make([]byte, 0, n)
	buf := make([]byte, n*2)
	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		for _, b := range buf {
			// 252 = 7*36, отбрасываем хвост чтобы не было перекоса
			if b >= 252 {
				continue
			}
			out = append(out, linkAlphabet[int(b)%len(linkAlphabet)])
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}
