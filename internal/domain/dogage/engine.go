package dogage

import (
	"math"
	"strings"
	"time"
)

// breakpoint separa el tramo de crecimiento rápido (cachorro) del tramo adulto.
const breakpoint = 2.0

// julianYear es el año promedio (365.25 días). No usar años de calendario:
// los resultados deben coincidir con la calculadora pública existente.
const julianYear = 365.25 * 24 * time.Hour

var birthdayLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// HumanAge convierte la edad del perro (años, fraccional) a años humanos sin redondear.
// Edades <= 0 (o NaN) devuelven 0.
func HumanAge(dogAge float64, size Size) (float64, error) {
	c, ok := curves[size]
	if !ok {
		return 0, ErrInvalidSize
	}
	if math.IsNaN(dogAge) || dogAge <= 0 {
		return 0, nil
	}
	if dogAge <= breakpoint {
		return dogAge * c.multiplier, nil
	}
	return c.base + (dogAge-breakpoint)*c.rate, nil
}

// AgeDescription agrupa la edad humana (ya redondeada) en rangos [low, high).
func AgeDescription(humanAge float64) string {
	switch {
	case humanAge < 1:
		return "as a newborn baby"
	case humanAge < 10:
		return "as a baby human"
	case humanAge < 20:
		return "as a teenager"
	case humanAge < 40:
		return "as a young adult"
	case humanAge < 65:
		return "as a middle-aged adult"
	default:
		return "as a senior adult"
	}
}

// LifeStage clasifica la edad REAL del perro (no la equivalente humana).
func LifeStage(dogAge float64) string {
	switch {
	case dogAge < 0.5:
		return StageNewborn
	case dogAge < 1:
		return StagePuppy
	case dogAge < 3:
		return StageYoungAdult
	case dogAge < 8:
		return StageAdult
	default:
		return StageSenior
	}
}

// Calculate arma el resultado completo.
// La edad humana se redondea con math.Round (mitad hacia arriba para positivos),
// pero la etapa de vida se calcula con la edad sin redondear.
func Calculate(dogAge float64, size Size) (Result, error) {
	if math.IsNaN(dogAge) || dogAge < 0 {
		dogAge = 0
	}
	raw, err := HumanAge(dogAge, size)
	if err != nil {
		return Result{}, err
	}
	humanAge := math.Min(math.Round(raw), math.MaxInt32)

	return Result{
		HumanAge:    int(humanAge),
		Description: AgeDescription(humanAge),
		LifeStage:   LifeStage(dogAge),
	}, nil
}

// AgeFromBirthday devuelve la edad en años (fraccional) entre birthday y now.
// Fechas futuras devuelven 0. Fechas sin hora se interpretan como medianoche UTC.
func AgeFromBirthday(birthday string, now time.Time) (float64, error) {
	birth, err := ParseBirthday(birthday)
	if err != nil {
		return 0, err
	}
	years := float64(now.Sub(birth)) / float64(julianYear)
	return math.Max(0, years), nil
}

// ValidateAge rechaza edades no finitas o mayores a MaxDogAge.
// Las negativas pasan: el motor las trata como 0.
func ValidateAge(dogAge float64) error {
	if math.IsNaN(dogAge) || math.IsInf(dogAge, 0) || dogAge > MaxDogAge {
		return ErrInvalidAge
	}
	return nil
}

func ParseBirthday(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidBirthday
	}
	for _, layout := range birthdayLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidBirthday
}
