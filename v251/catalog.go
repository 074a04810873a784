package v251

import hl7 "github.com/kamlesh-microsoft/clear-hl7-net-sub002"

// Version is the value of MSH-12 for messages of this catalog
const Version = "2.5.1"

// Catalog returns a new catalog holding the 2.5.1 declarations. Each call
// returns a fresh catalog so callers may add local Z-segments to it.
func Catalog() *hl7.Catalog {
	return hl7.NewCatalog(Version).
		AddTypes(Types()...).
		AddSegments(Segments()...).
		AddTables(Tables()...)
}

// Registry returns a registry holding only the 2.5.1 catalog
func Registry() *hl7.Registry {
	return hl7.NewRegistry(Catalog())
}
