package relatorios

// StatusResponse is the admin dashboard summary.
type StatusResponse struct {
	FuncionariosAtivos int64    `json:"funcionariosAtivos"`
	PontosHoje         int64    `json:"pontosHoje"`
	FeriasPendentes    int64    `json:"feriasPendentes"`
	UltimaAtualizacao  string   `json:"ultimaAtualizacao"`
	LogsRecentes       []string `json:"logsRecentes"`
	FotosRecentes      []string `json:"fotosRecentes"`
}
