package host

// SelectionID is an opaque, host-issued identity for one data row. It must
// round-trip unchanged through the visual and compare equal across updates
// for the same category, even when the instances are distinct.
type SelectionID interface {
	// Key returns a stable string form used for comparisons.
	Key() string
	Equal(other SelectionID) bool
}

// SelectionIDBuilder accumulates the identity of a data row.
type SelectionIDBuilder interface {
	WithCategory(category *CategoryColumn, index int) SelectionIDBuilder
	Create() SelectionID
}

// SelectionIDFactory mints builders. The host provides one per visual.
type SelectionIDFactory interface {
	Builder() SelectionIDBuilder
}

// SelectionManager brokers selection state with the host. Select toggles id
// in the current selection and invokes done with the updated list once the
// host has applied the change; done may run after Select returns.
type SelectionManager interface {
	Select(id SelectionID, multiSelect bool, done func(selected []SelectionID))
}

// ContainsID reports whether ids holds an identity equal to id.
func ContainsID(ids []SelectionID, id SelectionID) bool {
	if id == nil {
		return false
	}
	for _, candidate := range ids {
		if candidate != nil && candidate.Equal(id) {
			return true
		}
	}
	return false
}

// categoryIdentity is the default SelectionID implementation: the category
// column's query name plus the row's category value.
type categoryIdentity struct {
	key string
}

func (c categoryIdentity) Key() string { return c.key }

func (c categoryIdentity) Equal(other SelectionID) bool {
	return other != nil && c.key == other.Key()
}

type categoryIdentityBuilder struct {
	key string
}

func (b *categoryIdentityBuilder) WithCategory(category *CategoryColumn, index int) SelectionIDBuilder {
	value := any(nil)
	if category != nil && index >= 0 && index < len(category.Values) {
		value = category.Values[index]
	}
	queryName := ""
	if category != nil {
		queryName = category.Source.QueryName
	}
	b.key = queryName + "|" + Stringify(value)
	return b
}

func (b *categoryIdentityBuilder) Create() SelectionID {
	return categoryIdentity{key: b.key}
}

// IdentityFactory is the default SelectionIDFactory.
type IdentityFactory struct{}

func (IdentityFactory) Builder() SelectionIDBuilder {
	return &categoryIdentityBuilder{}
}
