package queue

const (
	TypeIdeaEmbed     = "idea:embed"
	TypeProjectExport = "project:export"
)

type IdeaEmbedPayload struct {
	IdeaID string `json:"idea_id"`
}

type ProjectExportPayload struct {
	ProjectID string `json:"project_id"`
}
