package nit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comercio-api/pkg/nit"
)

func TestComputeVerificationDigit(t *testing.T) {
	// 900373115: suma ponderada 657, 657 mod 11 = 8 → DV = 11 - 8 = 3
	dv, err := nit.ComputeVerificationDigit("900373115")
	require.NoError(t, err)
	assert.Equal(t, byte('3'), dv)
}

func TestValidateVerificationDigit_NITValido(t *testing.T) {
	assert.NoError(t, nit.ValidateVerificationDigit("900373115-3"))
	assert.NoError(t, nit.ValidateVerificationDigit("900.373.115-3"))
	assert.NoError(t, nit.ValidateVerificationDigit("9003731153"))
}

func TestValidateVerificationDigit_SinDV_Acepta(t *testing.T) {
	// 9 dígitos sin dígito de verificación se acepta tal cual
	assert.NoError(t, nit.ValidateVerificationDigit("900373115"))
}

func TestValidateVerificationDigit_DVIncorrecto(t *testing.T) {
	err := nit.ValidateVerificationDigit("900373115-5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dígito de verificación inválido")
}

func TestValidateVerificationDigit_MuyCorto(t *testing.T) {
	assert.Error(t, nit.ValidateVerificationDigit("12345"))
}
