package kinds

// Map names besides the per-kind maps, which are named after their kind.
const (
	MapThing = "thing"
	MapXref  = "xref"
)

// Action names.
const (
	ActionRegionUpcase     = "region.upcase"       // u
	ActionRegionDowncase   = "region.downcase"     // l
	ActionRegionCapitalize = "region.capitalize"   // c
	ActionRegionKill       = "region.kill"         // k
	ActionRegionCopy       = "region.copy"         // w
	ActionRegionSortLines  = "region.sort-lines"   // s
	ActionRegionCountWords = "region.count-words"  // =
	ActionRegionDedupe     = "region.dedupe-lines" // d

	ActionTableRowUp     = "table.move-row-up"       // p
	ActionTableRowDown   = "table.move-row-down"     // n
	ActionTableColLeft   = "table.move-column-left"  // <
	ActionTableColRight  = "table.move-column-right" // >
	ActionTableAlign     = "table.align"             // a
	ActionTableKillRow   = "table.kill-row"          // k
	ActionTableInsertRow = "table.insert-row"        // i
	ActionTableCopyCell  = "table.copy-cell"         // w

	ActionHeadingPromote   = "heading.promote"    // <
	ActionHeadingDemote    = "heading.demote"     // >
	ActionHeadingMoveUp    = "heading.move-up"    // p
	ActionHeadingMoveDown  = "heading.move-down"  // n
	ActionHeadingCycleTodo = "heading.cycle-todo" // t

	ActionTimestampIncrement = "timestamp.increment" // +
	ActionTimestampDecrement = "timestamp.decrement" // -
	ActionTimestampNow       = "timestamp.now"       // .

	ActionDiagnosticDescribe = "diagnostic.describe" // RET
	ActionDiagnosticCopy     = "diagnostic.copy"     // w

	ActionURLBrowse    = "url.browse"    // RET
	ActionURLHost      = "url.host"      // h
	ActionEmailCompose = "email.compose" // RET
	ActionFileOpen     = "file.open"     // RET

	ActionNumberIncrement = "number.increment" // +
	ActionNumberDecrement = "number.decrement" // -
	ActionNumberToHex     = "number.to-hex"    // x

	ActionSymbolDescribe   = "symbol.describe"            // RET
	ActionXrefDefinition   = "xref.definition"            // . .
	ActionXrefReferences   = "xref.references"            // . r
	ActionIdentSearchFwd   = "identifier.search-forward"  // s
	ActionIdentSearchBwd   = "identifier.search-backward" // r
	ActionIdentOccurrences = "identifier.occurrences"     // o

	ActionThingCopy = "thing.copy" // w
)

// stickyActions repeat without reopening the menu.
var stickyActions = []string{
	ActionTableRowUp,
	ActionTableRowDown,
	ActionTableColLeft,
	ActionTableColRight,
	ActionHeadingPromote,
	ActionHeadingDemote,
	ActionHeadingMoveUp,
	ActionHeadingMoveDown,
	ActionHeadingCycleTodo,
	ActionTimestampIncrement,
	ActionTimestampDecrement,
	ActionNumberIncrement,
	ActionNumberDecrement,
	ActionIdentSearchFwd,
	ActionIdentSearchBwd,
}
