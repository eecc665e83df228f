// Package catalog loads the storefront category list shown beside the
// filters.
//
// Client issues GET {baseURL}api/front/categories and validates the
// {status, data} envelope: a falsy status or a non-array data field is
// reported as ErrInvalidResponse. Loader wraps a fetcher and turns every
// failure into an empty List with StatusFailed, so the page never surfaces
// a category error to the user. There is no retry; one fetch per mount.
package catalog
