package registry

// Bundle groups the five registries into the single read-only context
// object threaded through the parser, type engine and suggestion engine.
type Bundle struct {
	Tiles       *TileCatalog
	Types       *TypeRegistry
	Ops         *OperatorTable
	Conversions *ConversionRegistry
	Functions   *FunctionRegistry
}

// NewBundle constructs an empty Bundle with all five registries
// initialized, ready for Register calls.
func NewBundle() *Bundle {
	return &Bundle{
		Tiles:       NewTileCatalog(),
		Types:       NewTypeRegistry(),
		Ops:         NewOperatorTable(),
		Conversions: NewConversionRegistry(),
		Functions:   NewFunctionRegistry(),
	}
}
