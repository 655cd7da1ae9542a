package dogage

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Recorder recibe una señal por cálculo (metrics.Calculator lo implementa).
type Recorder interface {
	Calculated(size, input, lifeStage string)
	Rejected(reason string)
}

type nopRecorder struct{}

func (nopRecorder) Calculated(string, string, string) {}
func (nopRecorder) Rejected(string)                   {}

const (
	inputAge      = "age"
	inputBirthday = "birthday"
)

// Service es el borde de la calculadora: resuelve la edad (directa o por fecha de
// nacimiento) y delega en Calculate. No persiste nada.
type Service struct {
	now      func() time.Time
	recorder Recorder
}

func NewService(rec Recorder) *Service {
	if rec == nil {
		rec = nopRecorder{}
	}
	return &Service{
		now:      time.Now,
		recorder: rec,
	}
}

// Input: si Birthday viene, gana sobre DogAge. DogAge nil cuenta como 0.
type Input struct {
	DogAge   *float64
	Birthday string
	Size     string
}

type Calculation struct {
	DogAge float64
	Size   Size
	Result
}

func (s *Service) Calculate(ctx context.Context, in Input) (Calculation, error) {
	size, err := ParseSize(in.Size)
	if err != nil {
		s.recorder.Rejected("size")
		return Calculation{}, err
	}

	var age float64
	input := inputAge
	if strings.TrimSpace(in.Birthday) != "" {
		input = inputBirthday
		age, err = AgeFromBirthday(in.Birthday, s.now())
		if err != nil {
			s.recorder.Rejected("birthday")
			return Calculation{}, err
		}
	} else if in.DogAge != nil {
		age = *in.DogAge
	}
	if err := ValidateAge(age); err != nil {
		s.recorder.Rejected("age")
		return Calculation{}, err
	}

	res, err := Calculate(age, size)
	if err != nil {
		s.recorder.Rejected("size")
		return Calculation{}, err
	}

	s.recorder.Calculated(string(size), input, res.LifeStage)
	return Calculation{DogAge: age, Size: size, Result: res}, nil
}

// IsInputError indica si err es culpa del input (400) y no del servidor.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidSize) ||
		errors.Is(err, ErrInvalidBirthday) ||
		errors.Is(err, ErrInvalidAge)
}
