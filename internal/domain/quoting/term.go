package quoting

// Term es un incoterm de la escalera de negociación soportada.
// El índice en la escalera define qué tramos de costo existen entre el
// término del proveedor y el término objetivo de la cotización.
type Term string

const (
	TermEXW Term = "EXW" // Ex Works: el comprador asume todo desde fábrica
	TermFOB Term = "FOB" // Free On Board: mercancía a bordo en puerto de origen
	TermCFR Term = "CFR" // Cost and Freight: incluye flete principal
	TermCIF Term = "CIF" // Cost, Insurance and Freight: CFR + seguro
	TermDAP Term = "DAP" // Delivered At Place: entregado en destino
	TermDDP Term = "DDP" // Delivered Duty Paid: incluye aduana destino e impuestos
)

// termLadder orden fijo de la escalera (índices 0..5).
var termLadder = []Term{TermEXW, TermFOB, TermCFR, TermCIF, TermDAP, TermDDP}

// LadderIndex devuelve el índice 0..5 del término en la escalera, o -1 si
// el término no es válido.
func LadderIndex(t Term) int {
	for i, lt := range termLadder {
		if lt == t {
			return i
		}
	}
	return -1
}

// Valid indica si el término pertenece a la escalera.
func (t Term) Valid() bool { return LadderIndex(t) >= 0 }

// ApplicableSegments devuelve los tramos de costo entre from y to: los
// términos estrictamente después de from hasta to inclusive. Si to queda
// en o antes de from (dirección degenerada), no aplica ningún tramo.
func ApplicableSegments(from, to Term) []Term {
	fi, ti := LadderIndex(from), LadderIndex(to)
	if fi < 0 || ti < 0 || ti <= fi {
		return nil
	}
	segments := make([]Term, 0, ti-fi)
	for i := fi + 1; i <= ti; i++ {
		segments = append(segments, termLadder[i])
	}
	return segments
}

// SegmentGates indica qué tramos de costo aplican a una cotización según
// el par de incoterms. El calculador y el desglose de costos consumen
// exactamente las mismas compuertas; cualquier divergencia entre ambos
// sería un bug de consistencia.
type SegmentGates struct {
	InlandToPort   bool // transporte interno fábrica → puerto (solo desde EXW)
	OriginPortFees bool // gastos portuarios en origen (solo desde EXW)
	ExportDocs     bool // despacho y documentos de exportación
	MainFreight    bool // flete internacional principal
	Insurance      bool // seguro de la mercancía (convención CIF)
	DestPortFees   bool // gastos portuarios en destino
	LastMile       bool // entrega final en destino
	ImportBroker   bool // agente de aduanas en destino (solo DDP)
	Duty           bool // arancel de importación (solo DDP)
	VAT            bool // IVA de importación (solo DDP)
}

// GatesFor evalúa las compuertas de tramo para un par proveedor → objetivo.
// Con dirección degenerada (objetivo en o antes del proveedor) todas las
// compuertas quedan en false.
func GatesFor(supplier, target Term) SegmentGates {
	si, ti := LadderIndex(supplier), LadderIndex(target)
	if si < 0 || ti < 0 || ti <= si {
		return SegmentGates{}
	}

	fromEXW := supplier == TermEXW
	return SegmentGates{
		InlandToPort:   fromEXW && ti >= LadderIndex(TermFOB),
		OriginPortFees: fromEXW && ti >= LadderIndex(TermFOB),
		ExportDocs:     ti >= LadderIndex(TermFOB),
		MainFreight:    ti >= LadderIndex(TermCFR) && si < LadderIndex(TermCFR),
		Insurance:      ti >= LadderIndex(TermCIF) && si < LadderIndex(TermCIF),
		DestPortFees:   ti >= LadderIndex(TermDAP) && si < LadderIndex(TermDAP),
		LastMile:       ti >= LadderIndex(TermDAP) && si < LadderIndex(TermDAP),
		ImportBroker:   target == TermDDP && si < LadderIndex(TermDDP),
		Duty:           target == TermDDP && si < LadderIndex(TermDDP),
		VAT:            target == TermDDP && si < LadderIndex(TermDDP),
	}
}
