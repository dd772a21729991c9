package entities

// ChangeKind tells the persistence gateway how to write an entity.
type ChangeKind int

const (
	// ChangeInsert writes a new entity; its id (and any unique key it owns)
	// must not exist yet.
	ChangeInsert ChangeKind = iota + 1
	// ChangeUpdate overwrites an entity whose stored version must still
	// match the one it was loaded with.
	ChangeUpdate
	// ChangeCheck writes nothing but fails the commit if the entity's stored
	// version moved since it was loaded.
	ChangeCheck
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeInsert:
		return "insert"
	case ChangeUpdate:
		return "update"
	case ChangeCheck:
		return "check"
	default:
		return "unknown"
	}
}

// Change is one entry of a ChangeSet. Entity is one of *Vehicle, *Client,
// *Payment or *Sale.
type Change struct {
	Kind   ChangeKind
	Entity any
}

// ChangeSet is the unit of work produced by a domain operation: every entity
// it lists is committed together or not at all.
type ChangeSet struct {
	changes []Change
}

func (c *ChangeSet) Insert(entity any) {
	c.add(ChangeInsert, entity)
}

func (c *ChangeSet) Update(entity any) {
	c.add(ChangeUpdate, entity)
}

func (c *ChangeSet) Check(entity any) {
	c.add(ChangeCheck, entity)
}

// Merge appends other's changes after c's own.
func (c *ChangeSet) Merge(other ChangeSet) {
	for _, ch := range other.changes {
		c.add(ch.Kind, ch.Entity)
	}
}

func (c ChangeSet) Changes() []Change {
	out := make([]Change, len(c.changes))
	copy(out, c.changes)
	return out
}

func (c ChangeSet) Len() int {
	return len(c.changes)
}

func (c ChangeSet) IsEmpty() bool {
	return len(c.changes) == 0
}

// add keeps a single entry per entity; a stronger kind (insert > update >
// check) wins over a weaker one recorded earlier.
func (c *ChangeSet) add(kind ChangeKind, entity any) {
	if entity == nil {
		return
	}
	for i, ch := range c.changes {
		if ch.Entity == entity {
			if kind < ch.Kind {
				c.changes[i].Kind = kind
			}
			return
		}
	}
	c.changes = append(c.changes, Change{Kind: kind, Entity: entity})
}
