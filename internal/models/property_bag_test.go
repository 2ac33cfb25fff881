package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertyBag_Scan(t *testing.T) {
	t.Run("bytes", func(t *testing.T) {
		var bag PropertyBag
		assert.NoError(t, bag.Scan([]byte(`{"color":"#009ACE","loop":false}`)))
		assert.Equal(t, "#009ACE", bag["color"])
		assert.Equal(t, false, bag["loop"])
	})

	t.Run("string", func(t *testing.T) {
		var bag PropertyBag
		assert.NoError(t, bag.Scan(`{"rating":4.7}`))
		assert.Equal(t, 4.7, bag["rating"])
	})

	t.Run("null", func(t *testing.T) {
		var bag PropertyBag
		assert.NoError(t, bag.Scan(nil))
		assert.Nil(t, bag)
	})

	t.Run("unsupported type", func(t *testing.T) {
		var bag PropertyBag
		assert.Error(t, bag.Scan(42))
	})
}

func TestPropertyBag_Value(t *testing.T) {
	v, err := PropertyBag(nil).Value()
	assert.NoError(t, err)
	assert.Nil(t, v)

	v, err = PropertyBag{"k": "v"}.Value()
	assert.NoError(t, err)
	assert.JSONEq(t, `{"k":"v"}`, string(v.([]byte)))
}
