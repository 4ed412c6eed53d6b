package domain

// ParseDiagnostic registra um campo que não pôde ser interpretado e recebeu o valor padrão.
// Nenhuma linha é descartada por causa de um diagnóstico.
type ParseDiagnostic struct {
	Source   string `json:"source"` // posts ou followers
	Row      int    `json:"row"`    // linha de dados, começando em 1 (sem contar o cabeçalho)
	RecordID string `json:"record_id,omitempty"`
	Column   string `json:"column"`
	Value    string `json:"value"`
	Default  string `json:"default"`
}
