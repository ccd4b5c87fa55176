package quoting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Cotizador-api/internal/domain/quoting"
)

func TestLadderIndex_OrdenFijo(t *testing.T) {
	assert.Equal(t, 0, quoting.LadderIndex(quoting.TermEXW))
	assert.Equal(t, 1, quoting.LadderIndex(quoting.TermFOB))
	assert.Equal(t, 2, quoting.LadderIndex(quoting.TermCFR))
	assert.Equal(t, 3, quoting.LadderIndex(quoting.TermCIF))
	assert.Equal(t, 4, quoting.LadderIndex(quoting.TermDAP))
	assert.Equal(t, 5, quoting.LadderIndex(quoting.TermDDP))
	assert.Equal(t, -1, quoting.LadderIndex(quoting.Term("FCA")),
		"un término fuera de la escalera debe dar índice -1")
}

func TestApplicableSegments_TramosEstrictos(t *testing.T) {
	segments := quoting.ApplicableSegments(quoting.TermFOB, quoting.TermDAP)
	assert.Equal(t, []quoting.Term{quoting.TermCFR, quoting.TermCIF, quoting.TermDAP}, segments,
		"los tramos van estrictamente después de from hasta to inclusive")

	assert.Empty(t, quoting.ApplicableSegments(quoting.TermCIF, quoting.TermCIF),
		"mismo término no genera tramos")
	assert.Empty(t, quoting.ApplicableSegments(quoting.TermFOB, quoting.TermEXW),
		"dirección degenerada no genera tramos")
	assert.Len(t, quoting.ApplicableSegments(quoting.TermEXW, quoting.TermDDP), 5,
		"EXW → DDP recorre la escalera completa")
}

// La dirección degenerada (objetivo antes del proveedor) debe apagar
// todas las compuertas: ningún tramo de costo aplica.
func TestGatesFor_DireccionDegenerada_TodoApagado(t *testing.T) {
	gates := quoting.GatesFor(quoting.TermFOB, quoting.TermEXW)
	assert.Equal(t, quoting.SegmentGates{}, gates,
		"FOB → EXW no debe activar ningún tramo de costo")
}

func TestGatesFor_EXWaFOB(t *testing.T) {
	gates := quoting.GatesFor(quoting.TermEXW, quoting.TermFOB)
	assert.True(t, gates.InlandToPort)
	assert.True(t, gates.OriginPortFees)
	assert.True(t, gates.ExportDocs)
	assert.False(t, gates.MainFreight)
	assert.False(t, gates.Insurance)
	assert.False(t, gates.DestPortFees)
	assert.False(t, gates.Duty)
}

func TestGatesFor_FOBaCIF(t *testing.T) {
	gates := quoting.GatesFor(quoting.TermFOB, quoting.TermCIF)
	assert.False(t, gates.InlandToPort, "los tramos de origen son del proveedor si no parte de EXW")
	assert.False(t, gates.OriginPortFees)
	assert.True(t, gates.ExportDocs)
	assert.True(t, gates.MainFreight)
	assert.True(t, gates.Insurance)
	assert.False(t, gates.DestPortFees)
	assert.False(t, gates.LastMile)
	assert.False(t, gates.ImportBroker)
}

func TestGatesFor_DDPActivaAduanaDestino(t *testing.T) {
	gates := quoting.GatesFor(quoting.TermEXW, quoting.TermDDP)
	assert.True(t, gates.ImportBroker)
	assert.True(t, gates.Duty)
	assert.True(t, gates.VAT)
	assert.True(t, gates.DestPortFees)
	assert.True(t, gates.LastMile)

	gates = quoting.GatesFor(quoting.TermEXW, quoting.TermDAP)
	assert.False(t, gates.ImportBroker, "aduana destino solo aplica hasta DDP")
	assert.False(t, gates.Duty)
	assert.False(t, gates.VAT)
}

// El proveedor ya en CIF no vuelve a pagar flete ni seguro aunque el
// objetivo sea DDP.
func TestGatesFor_ProveedorCIFaDDP(t *testing.T) {
	gates := quoting.GatesFor(quoting.TermCIF, quoting.TermDDP)
	assert.False(t, gates.MainFreight)
	assert.False(t, gates.Insurance)
	assert.True(t, gates.DestPortFees)
	assert.True(t, gates.LastMile)
	assert.True(t, gates.Duty)
}
