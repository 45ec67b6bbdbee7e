// Package input converte texto livre vindo de formulários, query strings ou da
// linha de comando em valores do domínio, devolvendo InvalidInputError.
package input

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"goarmazem/internal/domain"
	apperror "goarmazem/internal/errors"
)

// DateLayout é o formato dia-mês-ano aceito em datas de validade e referência.
const DateLayout = "02-01-2006"

// ParseDate lê uma data no formato DD-MM-YYYY, em UTC.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, apperror.NewInvalidInputError("data inválida. Use DD-MM-YYYY")
	}
	return d, nil
}

// FormatDate é o inverso de ParseDate.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseNonNegativeInt lê um inteiro >= 0; field nomeia o campo na mensagem de erro.
func ParseNonNegativeInt(field, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0, apperror.NewInvalidInputError(fmt.Sprintf("%s inválido: %q", field, s))
	}
	return v, nil
}

// ParsePositiveInt lê um inteiro > 0.
func ParsePositiveInt(field, s string) (int, error) {
	v, err := ParseNonNegativeInt(field, s)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, apperror.NewInvalidInputError(fmt.Sprintf("%s deve ser maior que zero", field))
	}
	return v, nil
}

// ParseLocation lê as quatro coordenadas e confere os limites da grade.
func ParseLocation(row, shelf, level, zone string, dims domain.Dimensions) (domain.Location, error) {
	r, err := ParseNonNegativeInt("número de fileira", row)
	if err != nil {
		return domain.Location{}, err
	}
	s, err := ParseNonNegativeInt("número de prateleira", shelf)
	if err != nil {
		return domain.Location{}, err
	}
	l, err := ParseNonNegativeInt("número de nível", level)
	if err != nil {
		return domain.Location{}, err
	}
	z, err := ParseNonNegativeInt("número de zona", zone)
	if err != nil {
		return domain.Location{}, err
	}

	loc := domain.NewLocation(r, s, l, z)
	if !dims.Contains(loc) {
		return domain.Location{}, apperror.NewInvalidInputError(fmt.Sprintf("localização %s excede as dimensões do armazém", loc))
	}
	return loc, nil
}

// ParseQualityKind aceita os nomes das qualidades sem diferenciar maiúsculas.
func ParseQualityKind(s string) (domain.QualityKind, error) {
	switch domain.QualityKind(strings.ToLower(strings.TrimSpace(s))) {
	case domain.QualityNormal:
		return domain.QualityNormal, nil
	case domain.QualityFragile:
		return domain.QualityFragile, nil
	case domain.QualityOversized:
		return domain.QualityOversized, nil
	default:
		return "", apperror.NewInvalidInputError(fmt.Sprintf("qualidade desconhecida %q (use normal, fragile ou oversized)", s))
	}
}
