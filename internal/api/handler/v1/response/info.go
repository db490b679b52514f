package response

type ServiceInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
}

type Health struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
