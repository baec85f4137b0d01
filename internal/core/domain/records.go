// internal/core/domain/records.go
package domain

// MXRecord representa un registro MX tal como lo devuelve el resolver.
// Host es el nombre del exchange, normalmente con punto final.
type MXRecord struct {
	Host string
	Pref uint16
}

// Result es un documento de configuración encontrado por un lookup de nivel superior.
type Result struct {
	Protocol Protocol `json:"protocol" yaml:"protocol"`
	Source   string   `json:"source" yaml:"source"`
	Document string   `json:"document" yaml:"document"`
}

// Summary resume una ejecución completa del pipeline.
type Summary struct {
	Queried int
	Found   int
}
