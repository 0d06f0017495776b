package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	opserr "github.com/dshills/formflow/pkg/errors"
	"github.com/dshills/formflow/pkg/form"
	"github.com/dshills/formflow/pkg/widget"
)

// BuildDraft snapshots a completed form into a Draft. Secret field
// values are written to the secret store and the draft row holds only
// a keyring reference; with a nil secret store, secret values are
// dropped from the draft entirely rather than stored in clear.
func BuildDraft(def *form.Definition, inputs []*widget.Input, secrets SecretStore) (*Draft, error) {
	if len(inputs) != len(def.Fields) {
		return nil, fmt.Errorf("definition has %d fields but %d widgets were supplied", len(def.Fields), len(inputs))
	}

	d := &Draft{
		ID:          uuid.NewString(),
		FormID:      def.ID,
		SubmittedAt: time.Now(),
		Values:      make(map[string]string, len(def.Fields)),
	}

	for i, f := range def.Fields {
		value := inputs[i].Value()
		if !f.Secret() {
			d.Values[f.ID] = value
			continue
		}
		if secrets == nil {
			continue
		}
		key := SecretKey(d.ID, f.ID)
		if err := secrets.Set(key, value); err != nil {
			return nil, opserr.NewOperationalError("storing secret draft value", def.ID, f.ID, err)
		}
		d.Values[f.ID] = SecretRef(key)
	}

	return d, nil
}
