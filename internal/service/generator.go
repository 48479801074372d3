package service

import (
	"crypto/rand"
)

const (
	// DefaultAliasLength длина алиаса по умолчанию, 9 символов по 6 бит
	DefaultAliasLength = 9
	// AllowedChars алфавит алиаса, только символы допустимые в сегменте пути URL
	AllowedChars = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ-_"
)

// RandomGenerator генерирует случайные алиасы фиксированной длины.
// Безопасен для конкурентного использования
type RandomGenerator struct {
	length int
}

// NewRandomGenerator создает генератор алиасов заданной длины.
// При неположительной длине используется DefaultAliasLength
func NewRandomGenerator(length int) *RandomGenerator {
	if length <= 0 {
		length = DefaultAliasLength
	}

	return &RandomGenerator{
		length: length,
	}
}

// Generate возвращает новый случайный алиас
func (g *RandomGenerator) Generate() string {
	result := make([]byte, g.length)
	rand.Read(result)

	// в алфавите ровно 64 символа, поэтому младшие 6 бит дают равномерное распределение
	for i, b := range result {
		result[i] = AllowedChars[b&63]
	}

	return string(result)
}
