package dogage

import (
	"errors"
	"strings"
)

var (
	ErrInvalidSize     = errors.New("size must be one of small, medium, large")
	ErrInvalidBirthday = errors.New("birthday must be a date (YYYY-MM-DD or RFC3339)")
	ErrInvalidAge      = errors.New("age must be a finite number up to 50 years")
)

// MaxDogAge es la edad más alta que acepta la calculadora.
const MaxDogAge = 50.0

// Size es la clase de tamaño del perro; define la curva de envejecimiento.
// @Enum small, medium, large
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Etapas de vida (sobre la edad real del perro).
const (
	StageNewborn    = "Newborn"
	StagePuppy      = "Puppy"
	StageYoungAdult = "Young Adult"
	StageAdult      = "Adult"
	StageSenior     = "Senior"
)

// Result es el valor derivado de una combinación (edad, tamaño). No se persiste.
type Result struct {
	HumanAge    int    `json:"humanAge"`
	Description string `json:"description"`
	LifeStage   string `json:"lifeStage"`
}

// curve agrupa los parámetros de un tramo lineal por tamaño.
type curve struct {
	multiplier float64 // edad <= 2
	base       float64 // valor a los 2 años
	rate       float64 // por año después de los 2
}

var curves = map[Size]curve{
	SizeSmall:  {multiplier: 12.5, base: 25, rate: 4},
	SizeMedium: {multiplier: 12, base: 24, rate: 4.5},
	SizeLarge:  {multiplier: 11.25, base: 22.5, rate: 6.5},
}

// ParseSize normaliza (trim + lower) y valida el tamaño.
func ParseSize(s string) (Size, error) {
	size := Size(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := curves[size]; !ok {
		return "", ErrInvalidSize
	}
	return size, nil
}

func (s Size) Valid() bool {
	_, ok := curves[s]
	return ok
}

// Sizes devuelve los tamaños soportados en orden ascendente.
func Sizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge}
}
