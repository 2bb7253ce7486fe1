// Enums here are needed both by the command line layer and by the
// configuration package. Keeping them separate avoids an import loop and
// keeps generated code out of packages with real logic.
package common

// Specification of requested class map serialization format.
// ENUM(yaml, json)
type MapFmt int

// Ext returns file extension for the class map file in this format.
func (m MapFmt) Ext() string {
	switch m {
	case MapFmtYaml:
		return ".classmap.yaml"
	case MapFmtJson:
		return ".classmap.json"
	default:
		// this should never happen
		panic("unsupported class map format requested")
	}
}
