package glue

//go:generate go tool stringer -type=StrategyEnum -trimprefix=Strategy -output=strategy_string.go

// StrategyEnum is the way a remote change is applied to the model.
// The order of the constants is the dispatch priority.
type StrategyEnum int

const (
	StrategyGenericHook StrategyEnum = iota
	StrategySpecificHook
	StrategyDirectMethod
	StrategyConventionSetter
	StrategyFieldAssignment

	// StrategyTotal is a constant that represents the total number of strategies defined
	StrategyTotal = int(iota)
)

// IsHook reports whether s calls one of the *SetFromCloud hooks. Panics in
// hooks propagate; panics in the other strategies are recovered.
func (s StrategyEnum) IsHook() bool {
	return s == StrategyGenericHook || s == StrategySpecificHook
}
