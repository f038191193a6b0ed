package property

import (
	"fmt"

	"github.com/google/uuid"
	g "maragu.dev/gomponents"

	"github.com/typecms/typecms/pkg/i18n"
	"github.com/typecms/typecms/pkg/qs"
)

// UUID is an identifier property. Go representation: uuid.UUID. It renders
// only as a column; id fields are skipped in input forms and generated
// server-side on create.
type UUID struct{}

func (UUID) RenderColumn(value any, _ *i18n.Translator) g.Node {
	id, ok := value.(uuid.UUID)
	if !ok {
		return nil
	}
	return g.Text(id.String())
}

func (UUID) DecodeForm(node qs.Node) (any, error) {
	s, err := formString(node)
	if err != nil {
		return nil, err
	}
	return parseUUID(s)
}

func (UUID) DecodeJSON(v any) (any, error) {
	if id, ok := v.(uuid.UUID); ok {
		return id, nil
	}
	s, err := jsonString(v)
	if err != nil {
		return nil, err
	}
	return parseUUID(s)
}

func parseUUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid uuid %q", ErrType, s)
	}
	return id, nil
}
