package schema

// CatalogRecordTable represents the 'catalog.record' table
type CatalogRecordTable struct {
	Table       string
	Position    string
	Name        string
	Description string
	Tags        string
	Nickname    string
	ImageURL    string
	Link        string
	Year        string
	FoundedDate string
}

// CatalogRecord is the schema definition for catalog.record
var CatalogRecord = CatalogRecordTable{
	Table:       "catalog.record",
	Position:    "position",
	Name:        "name",
	Description: "description",
	Tags:        "tags",
	Nickname:    "nickname",
	ImageURL:    "imageurl",
	Link:        "link",
	Year:        "year",
	FoundedDate: "foundeddate",
}

func (t CatalogRecordTable) Columns() []string {
	return []string{t.Name, t.Description, t.Tags, t.Nickname, t.ImageURL, t.Link, t.Year, t.FoundedDate}
}
