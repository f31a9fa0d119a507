package api

import (
	"context"
	"net/url"
	"strconv"

	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/infra/transport"

	"github.com/pkg/errors"
)

// maxCollectPages bounds how many next links one collection read follows.
const maxCollectPages = 200

// collect reads a whole collection, following next links until the service stops sending one.
// Collections that the caller does not page through must be read with collect.
func collect[T any](ctx context.Context, client *transport.Client, req transport.Request) ([]T, error) {
	var items []T

	current := 1
	for fetched := 0; ; fetched++ {
		var resp list[T]
		if err := client.Do(ctx, req, &resp); err != nil {
			return nil, err
		}

		items = append(items, resp.Items...)

		if !resp.Next {
			return items, nil
		}

		if resp.NextPage <= current || fetched+1 >= maxCollectPages {
			return nil, errors.Wrapf(
				domainerrors.ErrInternalError.WithDetails("unusable next link"),
				"collection %s stopped at page %d of %d items", req.Path, current, resp.Count,
			)
		}

		current = resp.NextPage
		req.Query = withPage(req.Query, current)
	}
}

func withPage(query url.Values, page int) url.Values {
	next := url.Values{}
	for key, values := range query {
		next[key] = append([]string(nil), values...)
	}
	next.Set("page", strconv.Itoa(page))

	return next
}
