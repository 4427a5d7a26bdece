package kinds

import "github.com/dshills/atpoint/internal/target"

// binding is one trigger in a declarative map table. A binding with a
// map name instead of an action is a named prefix.
type binding struct {
	spec   string
	action string
	named  string
}

func leaf(spec, action string) binding { return binding{spec: spec, action: action} }
func named(spec, name string) binding { return binding{spec: spec, named: name} }

// mapTable declares the map for one kind.
type mapTable struct {
	kind   target.Kind
	parent string
	keys   []binding
}

var sharedTables = map[string][]binding{
	MapThing: {
		leaf("w", ActionThingCopy),
	},
	MapXref: {
		leaf(".", ActionXrefDefinition),
		leaf("r", ActionXrefReferences),
	},
}

var kindTables = []mapTable{
	{kind: target.KindRegion, keys: []binding{
		leaf("u", ActionRegionUpcase),
		leaf("l", ActionRegionDowncase),
		leaf("c", ActionRegionCapitalize),
		leaf("k", ActionRegionKill),
		leaf("w", ActionRegionCopy),
		leaf("s", ActionRegionSortLines),
		leaf("=", ActionRegionCountWords),
		leaf("d", ActionRegionDedupe),
	}},
	{kind: target.KindTableCell, keys: []binding{
		leaf("p", ActionTableRowUp),
		leaf("n", ActionTableRowDown),
		leaf("<", ActionTableColLeft),
		leaf(">", ActionTableColRight),
		leaf("a", ActionTableAlign),
		leaf("k", ActionTableKillRow),
		leaf("i", ActionTableInsertRow),
		leaf("w", ActionTableCopyCell),
	}},
	{kind: target.KindHeading, keys: []binding{
		leaf("<", ActionHeadingPromote),
		leaf(">", ActionHeadingDemote),
		leaf("p", ActionHeadingMoveUp),
		leaf("n", ActionHeadingMoveDown),
		leaf("t", ActionHeadingCycleTodo),
	}},
	{kind: target.KindTimestamp, parent: MapThing, keys: []binding{
		leaf("+", ActionTimestampIncrement),
		leaf("-", ActionTimestampDecrement),
		leaf(".", ActionTimestampNow),
	}},
	{kind: target.KindDiagnostic, keys: []binding{
		leaf("RET", ActionDiagnosticDescribe),
		leaf("w", ActionDiagnosticCopy),
	}},
	{kind: target.KindURL, parent: MapThing, keys: []binding{
		leaf("RET", ActionURLBrowse),
		leaf("h", ActionURLHost),
	}},
	{kind: target.KindEmail, parent: MapThing, keys: []binding{
		leaf("RET", ActionEmailCompose),
	}},
	{kind: target.KindFile, parent: MapThing, keys: []binding{
		leaf("RET", ActionFileOpen),
	}},
	{kind: target.KindNumber, parent: MapThing, keys: []binding{
		leaf("+", ActionNumberIncrement),
		leaf("-", ActionNumberDecrement),
		leaf("x", ActionNumberToHex),
	}},
	{kind: target.KindFunction, parent: MapThing, keys: []binding{
		leaf("RET", ActionSymbolDescribe),
		named(".", MapXref),
	}},
	{kind: target.KindVariable, parent: MapThing, keys: []binding{
		leaf("RET", ActionSymbolDescribe),
		named(".", MapXref),
	}},
	{kind: target.KindIdentifier, parent: MapThing, keys: []binding{
		leaf("s", ActionIdentSearchFwd),
		leaf("r", ActionIdentSearchBwd),
		leaf("o", ActionIdentOccurrences),
	}},
}

// noValueKinds are the kinds whose actions take no argument.
var noValueKinds = map[target.Kind]bool{
	target.KindTableCell: true,
	target.KindHeading:   true,
}
