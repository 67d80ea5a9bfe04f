package entity

// Metadata keys written by the vectorization job.
const (
	MetaDrugbankId = "drugbank_id"
	MetaSection    = "section"
)

type Passage struct {
	Id             string
	Document       string
	Metadata       map[string]string
	EmbeddingValue []float32
	Similarity     float64
}

func (p *Passage) DrugbankId() string {
	return p.Metadata[MetaDrugbankId]
}

func (p *Passage) Section() string {
	return p.Metadata[MetaSection]
}
