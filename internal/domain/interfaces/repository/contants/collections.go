package repocontants

const (
	DISPATCH_COLLECTION = "dispatches"

	DISPATCH_INSTANCE_FIELD = "instance_name"
	DISPATCH_CREATED_FIELD  = "created_at"
)
