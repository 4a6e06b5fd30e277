package core

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

var identifiers = struct {
	sync.Mutex
	owners map[uuid.UUID]interface{}
}{owners: make(map[uuid.UUID]interface{})}

// IdentifierAquireNewID hands out a fresh random ID bound to owner.
func IdentifierAquireNewID(owner interface{}) uuid.UUID {
	identifiers.Lock()
	defer identifiers.Unlock()
	for {
		id := uuid.New()
		if _, taken := identifiers.owners[id]; !taken {
			identifiers.owners[id] = owner
			return id
		}
	}
}

// IdentifierOwner returns the owner registered for id, or nil.
func IdentifierOwner(id uuid.UUID) interface{} {
	identifiers.Lock()
	defer identifiers.Unlock()
	return identifiers.owners[id]
}

func IdentifierReleaseID(id uuid.UUID) error {
	identifiers.Lock()
	defer identifiers.Unlock()
	if _, ok := identifiers.owners[id]; !ok {
		return fmt.Errorf("identifier release: id '%s' is not registered. Nothing was done", id)
	}
	delete(identifiers.owners, id)
	return nil
}
