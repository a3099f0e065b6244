package filesystem

type (
	Reader interface {
		Read(path string) ([]byte, error)
	}
	Writer interface {
		Write(path string, payload Payload) error
	}
)
