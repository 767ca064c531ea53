package record

import (
	"context"
	"net/http"

	"github.com/restorm-go/restorm/query"
)

// Save persists the entity: POST to the collection when the id is
// absent, otherwise a full PUT (equivalent to SaveWith with no
// attributes). The response is merged back onto the entity in place,
// including a server-assigned id.
func Save(ctx context.Context, e Entity) error {
	if e.model().ID != nil {
		return SaveWith(ctx, e, nil)
	}
	b := builderFor(e)
	body, err := ToObject(e)
	if err != nil {
		return err
	}
	b.SetMethod(http.MethodPost)
	b.SetBody(body)
	resp, err := dispatch(ctx, b)
	if err != nil {
		return err
	}
	return decodeInto(e, resp.Data)
}

// SaveWith merges attributes onto the entity, then PUTs the entity's
// full serialized state against its id and merges the response back.
func SaveWith(ctx context.Context, e Entity, attributes map[string]any) error {
	return saveWith(ctx, e, attributes, http.MethodPut)
}

// PatchWith is SaveWith over PATCH: the remote API treats the body as a
// partial merge.
func PatchWith(ctx context.Context, e Entity, attributes map[string]any) error {
	return saveWith(ctx, e, attributes, http.MethodPatch)
}

func saveWith(ctx context.Context, e Entity, attributes map[string]any, method string) error {
	if attributes != nil {
		if err := decodeInto(e, attributes); err != nil {
			return err
		}
	}
	b := builderFor(e)
	body, err := ToObject(e)
	if err != nil {
		return err
	}
	b.SetMethod(method)
	b.SetBody(body)
	resp, err := dispatch(ctx, b)
	if err != nil {
		return err
	}
	return decodeInto(e, resp.Data)
}

// Refresh re-fetches the entity at its current id and merges the
// response onto it in place.
func Refresh(ctx context.Context, e Entity) error {
	b := builderFor(e)
	b.SetMethod(http.MethodGet)
	b.SetBody(nil)
	resp, err := dispatch(ctx, b)
	if err != nil {
		return err
	}
	return decodeInto(e, resp.Data)
}

// Destroy issues DELETE against the entity's id. The instance is not
// mutated; forgetting it is the caller's responsibility.
func Destroy(ctx context.Context, e Entity) error {
	b := builderFor(e)
	b.SetMethod(http.MethodDelete)
	b.SetBody(nil)
	_, err := dispatch(ctx, b)
	return err
}

func dispatch(ctx context.Context, b *query.Builder) (*Response, error) {
	a, err := Active()
	if err != nil {
		return nil, err
	}
	return a.Call(ctx, b)
}
