package diggpager

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/go-querystring/query"
	"gorm.io/gorm"
)

// RawPageRequest is intended for API payloads and query strings. For proper code
// generation, inline it:
//
//	type MyFilter struct {
//	    Paging RawPageRequest `json:",inline"`
//	}
type RawPageRequest struct {
	// Page - requested 1-based page number. Zero means the first page.
	Page int `json:"page" url:"page,omitempty" validate:"gte=0"`
	// PageSize - maximum number of records on a page. Zero means DefaultPageSize.
	PageSize int `json:"pageSize" url:"pageSize,omitempty" validate:"gte=0"`
	// Sort - list of "column asc|desc" strings.
	Sort []string `json:"sort,omitempty" url:"sort,omitempty"`
}

// ParseRawPageRequest reads page, pageSize and sort from a query string. Values
// that are not numbers are ignored.
func ParseRawPageRequest(values url.Values) RawPageRequest {
	page, _ := strconv.Atoi(values.Get("page"))
	size, _ := strconv.Atoi(values.Get("pageSize"))

	return RawPageRequest{
		Page:     page,
		PageSize: size,
		Sort:     values["sort"],
	}
}

// Values encodes the request back into query string parameters, dropping zero
// fields.
func (r RawPageRequest) Values() (url.Values, error) {
	values, err := query.Values(r)
	if err != nil {
		return nil, fmt.Errorf("cannot encode page request: %w", err)
	}

	return values, nil
}

// Decode converts RawPageRequest into *PageRequest, normalizing Page and PageSize
// and resolving Sort through aliases. defaultSort is used when Sort is empty.
// Negative values and a Page whose offset overflows are rejected with
// ErrInvalidPageRequest.
func (r RawPageRequest) Decode(aliases SortAliases, defaultSort ...SortField) (*PageRequest, error) {
	err := _validate.Struct(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPageRequest, err)
	}

	if r.Page > 0 && !IsAddressablePage(r.Page, NormalizePageSize(r.PageSize)) {
		return nil, fmt.Errorf("%w: page %d is out of range", ErrInvalidPageRequest, r.Page)
	}

	sort, err := ParseSort(r.Sort, aliases)
	if err != nil {
		return nil, err
	}

	if len(sort) == 0 {
		sort = defaultSort
	}

	return NewPageRequest().
		WithPage(r.Page).
		WithSize(r.PageSize).
		WithSubstitutedSort(sort...), nil
}

// PageRequest describes which page of a dataset to load.
type PageRequest struct {
	page int
	size int
	sort Sort
}

func NewPageRequest() *PageRequest {
	return new(PageRequest)
}

// WithPage sets the 1-based page number. Page clamps it with NormalizePage.
func (p *PageRequest) WithPage(page int) *PageRequest {
	if p == nil {
		p = new(PageRequest)
	}

	p.page = page

	return p
}

// WithSize sets the page size. NormalizePageSize is applied.
func (p *PageRequest) WithSize(size int) *PageRequest {
	if p == nil {
		p = new(PageRequest)
	}

	p.size = NormalizePageSize(size)

	return p
}

// WithSort appends sort fields without overwriting existing ones.
func (p *PageRequest) WithSort(fields ...SortField) *PageRequest {
	if p == nil {
		p = new(PageRequest)
	}

	p.sort = p.sort.With(fields...)

	return p
}

// WithSubstitutedSort resets previous sort fields and applies the provided ones.
func (p *PageRequest) WithSubstitutedSort(fields ...SortField) *PageRequest {
	if p == nil {
		p = new(PageRequest)
	}

	p.sort = nil

	return p.WithSort(fields...)
}

// Page returns the 1-based page number, capped so that Offset does not overflow.
func (p *PageRequest) Page() int {
	if p == nil {
		return 1
	}

	return NormalizePage(p.page, p.Size())
}

// Index returns the 0-based page index, as PagedList expects it.
func (p *PageRequest) Index() int {
	return p.Page() - 1
}

// Size returns the page size. A request without an explicit size uses
// DefaultPageSize.
func (p *PageRequest) Size() int {
	if p == nil || p.size == 0 {
		return DefaultPageSize
	}

	return p.size
}

// Offset returns the number of records to skip.
func (p *PageRequest) Offset() int {
	return p.Index() * p.Size()
}

// GetSort returns the sort that will be applied to the dataset.
func (p *PageRequest) GetSort() Sort {
	if p == nil {
		return nil
	}

	return p.sort
}

// Apply applies sort, offset and limit to a gorm query.
func (p *PageRequest) Apply(db *gorm.DB) *gorm.DB {
	return p.GetSort().Apply(db).Offset(p.Offset()).Limit(p.Size())
}

func (p *PageRequest) validate() error {
	if p == nil {
		return fmt.Errorf("%w: page request is nil", ErrInvalidPageRequest)
	}

	if err := p.sort.validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPageRequest, err)
	}

	return nil
}

// Paginate counts the records matched by db and loads the requested page of them.
//
// db must carry the model or table and any filters, e.g.
//
//	list, err := Paginate[User](db.WithContext(ctx).Model(&User{}).Where("active"), req)
//
// When the requested page starts past the end of the dataset, only the count
// query is executed.
func Paginate[T any](db *gorm.DB, req *PageRequest) (*PagedList[T], error) {
	err := req.validate()
	if err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}

	base := db.Session(&gorm.Session{})

	var total int64
	if err = base.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("cannot paginate: count: %w", err)
	}

	items := make([]T, 0, req.Size())
	if total > int64(req.Offset()) {
		if err = req.Apply(base).Find(&items).Error; err != nil {
			return nil, fmt.Errorf("cannot paginate: find: %w", err)
		}
	}

	return NewPagedListWithTotal(items, req.Index(), req.Size(), int(total)), nil
}
