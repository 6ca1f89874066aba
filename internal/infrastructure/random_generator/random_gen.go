package randomgenerator

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/mikiasgoitom/newsdesk/internal/domain/contract"
)

type RandomGenerator struct{}

func NewRandomGenerator() contract.IRandomGenerator {
	return &RandomGenerator{}
}

var _ (contract.IRandomGenerator) = (*RandomGenerator)(nil)

var ten = big.NewInt(10)

func (rg *RandomGenerator) GenerateDigits(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("digit count must be positive, got %d", n)
	}
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		x, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("failed to generate random digits: %w", err)
		}
		b.WriteByte(byte('0' + x.Int64()))
	}
	return b.String(), nil
}
