package client

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/client-tracker/internal/httperr"
	"github.com/BruksfildServices01/client-tracker/internal/models"
	"github.com/BruksfildServices01/client-tracker/internal/validators"
)

const (
	// SameAsHouse substitui o endereço de registro quando é igual ao da casa
	SameAsHouse = "同左"

	// FollowDateLayout é o formato digitado pelo funcionário (YYYY/MM/DD)
	FollowDateLayout = "2006/01/02"

	DefaultFollowUpDays = 14
)

// ===============================
// Regras de domínio
// ===============================

// NormalizeRegisterAddress aplica a regra do "同左"
func NormalizeRegisterAddress(house, register string) string {
	if strings.TrimSpace(house) == strings.TrimSpace(register) {
		return SameAsHouse
	}
	return register
}

// ParseFollowDate interpreta a data no fuso do servidor.
// Devolve ok=false quando o campo está vazio.
func ParseFollowDate(raw string, loc *time.Location) (t time.Time, ok bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false, nil
	}

	t, err = time.ParseInLocation(FollowDateLayout, raw, loc)
	if err != nil {
		return time.Time{}, false, httperr.ErrValidation
	}
	return t, true, nil
}

func DefaultNextFollow(firstContact time.Time) time.Time {
	return firstContact.AddDate(0, 0, DefaultFollowUpDays)
}

// Apply valida os tamanhos e copia os campos editáveis para o registro.
// Com erro, o registro não é alterado.
func Apply(c *models.Client, name, house, register, notes string) error {
	if !validators.FitsLength(name, validators.MaxClientNameLen) ||
		!validators.FitsLength(house, validators.MaxAddressLen) ||
		!validators.FitsLength(register, validators.MaxAddressLen) {
		return httperr.ErrValidation
	}

	c.Name = name
	c.HouseAddress = house
	c.RegisterAddress = NormalizeRegisterAddress(house, register)
	c.Notes = notes
	return nil
}
