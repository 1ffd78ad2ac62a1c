package filter

// AuthorGraphFilter selects the primary author set of the collaboration
// graph. Every dimension is optional, but at least one of the selection
// dimensions has to be populated. MinLinkCount is a post-aggregation
// threshold on related authors, not a selection dimension, so it does not
// count towards IsEmpty.
type AuthorGraphFilter struct {
	Authors       []int64  `json:"authors"`
	Organizations []int64  `json:"organizations"`
	Keywords      []string `json:"keywords"`
	Cities        []string `json:"cities"`
	MinLinkCount  int      `json:"minLinkCount"`
}

func (f AuthorGraphFilter) IsEmpty() bool {
	return len(f.Authors) == 0 &&
		len(f.Organizations) == 0 &&
		len(f.Keywords) == 0 &&
		len(f.Cities) == 0
}

// OrganizationGraphFilter selects the primary organization set by the
// keywords of their publications.
type OrganizationGraphFilter struct {
	Keywords     []string `json:"keywords"`
	MinLinkCount int      `json:"minLinkCount"`
}

func (f OrganizationGraphFilter) IsEmpty() bool {
	return len(f.Keywords) == 0
}

// ReferenceGraphFilter selects authors for the reference graph. The graph
// kind itself is not built yet; the filter exists so the request contract is
// stable.
type ReferenceGraphFilter struct {
	Authors []string `json:"authors"`
}

func (f ReferenceGraphFilter) IsEmpty() bool {
	return len(f.Authors) == 0
}
