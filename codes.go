package hl7

// CodeEntry is one coded value of an HL7 table: a symbolic name, the wire
// code and its display text
type CodeEntry struct {
	Name    string
	Code    string
	Display string
}

// CodeTable maps symbolic names to wire codes for one HL7 table
type CodeTable struct {
	ID      string
	Name    string
	Entries []CodeEntry

	byName map[string]int
	byCode map[string]int
}

// NewCodeTable builds a table from its entries
func NewCodeTable(id, name string, entries ...CodeEntry) *CodeTable {
	t := &CodeTable{
		ID:      id,
		Name:    name,
		Entries: entries,
		byName:  make(map[string]int, len(entries)),
		byCode:  make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		t.byName[e.Name] = i
		t.byCode[e.Code] = i
	}
	return t
}

// Code returns the wire code for a symbolic name
func (t *CodeTable) Code(name string) (string, bool) {
	i, ok := t.byName[name]
	if !ok {
		return "", false
	}
	return t.Entries[i].Code, true
}

// NameOf returns the symbolic name of a wire code
func (t *CodeTable) NameOf(code string) (string, bool) {
	i, ok := t.byCode[code]
	if !ok {
		return "", false
	}
	return t.Entries[i].Name, true
}

// Display returns the display text of a wire code
func (t *CodeTable) Display(code string) (string, bool) {
	i, ok := t.byCode[code]
	if !ok {
		return "", false
	}
	return t.Entries[i].Display, true
}

// Contains reports whether code is registered in the table
func (t *CodeTable) Contains(code string) bool {
	_, ok := t.byCode[code]
	return ok
}
