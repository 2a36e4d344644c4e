package dto

type RouteDTO struct {
	Path    string   `json:"path"    example:"/thoughts"`
	Methods []string `json:"methods" example:"GET,POST"`
}
