package onecode_test

import (
	"testing"

	"github.com/chaisql/onecode"
	"github.com/chaisql/onecode/internal/testutil/assert"
	"github.com/stretchr/testify/require"
)

type message interface {
	onecode.Enum
}

type quit struct{}

func (quit) OneCodeVariant() (string, onecode.VariantKind) {
	return "Quit", onecode.UnitVariant
}

type write struct {
	Text string
}

func (write) OneCodeVariant() (string, onecode.VariantKind) {
	return "Write", onecode.NewtypeVariant
}

type color uint32

func (color) OneCodeVariant() (string, onecode.VariantKind) {
	return "Color", onecode.NewtypeVariant
}

type move struct {
	X int32
	Y int32
}

func (*move) OneCodeVariant() (string, onecode.VariantKind) {
	return "Move", onecode.TupleVariant
}

type resize struct {
	Width  uint32
	Height uint32 `onecode:"h"`
}

func (resize) OneCodeVariant() (string, onecode.VariantKind) {
	return "Resize", onecode.StructVariant
}

type envelope struct {
	ID      uint64
	Message message
}

func TestEnumMarshal(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"unit", quit{}, "4:Quit"},
		{"newtype", write{Text: "hi"}, "d5:Write2:hie"},
		{"newtype value", color(255), "d5:Colori255ee"},
		{"tuple", &move{X: 1, Y: -2}, "d4:Moveli1ei-2eee"},
		{"tuple value", []move{{X: 3, Y: 4}}, "ld4:Moveli3ei4eeee"},
		{"tuple not addressable", move{X: 5, Y: 6}, "d4:Moveli5ei6eee"},
		{"tuple in interface", envelope{Message: &move{X: 1}}, "d2:idi0e7:messaged4:Moveli1ei0eeee"},
		{"struct", resize{Width: 10, Height: 20}, "d6:Resized5:widthi10e1:hi20eee"},
		{"in struct", envelope{ID: 1, Message: write{Text: "a"}}, "d2:idi1e7:messaged5:Write1:aee"},
		{"nil", envelope{ID: 1}, "d2:idi1e7:messageNe"},
		{"list", []message{quit{}, color(1)}, "l4:Quitd5:Colori1eee"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := onecode.MarshalString(test.value)
			assert.NoError(t, err)
			require.Equal(t, test.want, got)
		})
	}
}

func TestEnumEncoderMethods(t *testing.T) {
	var e onecode.Encoder

	e.BeginList()
	e.WriteUnitVariant("A")
	require.NoError(t, e.WriteNewtypeVariant("B", 1))
	e.BeginTupleVariant("C")
	e.WriteBool(true)
	e.EndTupleVariant()
	e.BeginStructVariant("D")
	e.WriteString("x")
	e.WriteNull()
	e.EndStructVariant()
	e.EndList()

	require.Equal(t, "l1:Ad1:Bi1eed1:ClTeed1:Dd1:xNeee", string(e.Bytes()))
}

func TestEnumUnmarshal(t *testing.T) {
	variants := onecode.WithVariants(quit{}, write{}, color(0), &move{}, resize{})

	t.Run("concrete types", func(t *testing.T) {
		var w write
		assert.NoError(t, onecode.UnmarshalString("d5:Write2:hie", &w))
		require.Equal(t, write{Text: "hi"}, w)

		var c color
		assert.NoError(t, onecode.UnmarshalString("d5:Colori7ee", &c))
		require.Equal(t, color(7), c)

		var m move
		assert.NoError(t, onecode.UnmarshalString("d4:Moveli1ei-2eee", &m))
		require.Equal(t, move{X: 1, Y: -2}, m)

		var r resize
		assert.NoError(t, onecode.UnmarshalString("d6:Resized5:widthi10e1:hi20eee", &r))
		require.Equal(t, resize{Width: 10, Height: 20}, r)
	})

	t.Run("interface", func(t *testing.T) {
		var got []message
		err := onecode.UnmarshalString("ld5:Write1:aed4:Moveli1ei2eeed6:Resized5:widthi1eeeNe", &got, variants)
		assert.NoError(t, err)
		require.Equal(t, []message{write{Text: "a"}, &move{X: 1, Y: 2}, resize{Width: 1}, nil}, got)
	})

	t.Run("round trip", func(t *testing.T) {
		want := envelope{ID: 9, Message: resize{Width: 4, Height: 3}}
		data, err := onecode.Marshal(want)
		assert.NoError(t, err)

		var got envelope
		assert.NoError(t, onecode.Unmarshal(data, &got, variants))
		require.Equal(t, want, got)
	})

	t.Run("unit variants don't round trip", func(t *testing.T) {
		data, err := onecode.MarshalString(envelope{Message: quit{}})
		assert.NoError(t, err)

		var got envelope
		err = onecode.UnmarshalString(data, &got, variants)
		assert.ErrorIs(t, err, onecode.ErrExpectedDictionary)

		err = onecode.UnmarshalString("d4:QuitNe", new(message), variants)
		assert.ErrorIs(t, err, onecode.ErrUnsupportedOperation)

		var q quit
		err = onecode.UnmarshalString("4:Quit", &q)
		assert.ErrorIs(t, err, onecode.ErrExpectedDictionary)
	})

	t.Run("unknown variant", func(t *testing.T) {
		var uve *onecode.UnknownVariantError

		err := onecode.UnmarshalString("d4:Jump2:hie", new(message), variants)
		require.ErrorAs(t, err, &uve)
		require.Equal(t, "Jump", uve.Name)

		// not registered
		err = onecode.UnmarshalString("d5:Write2:hie", new(message))
		require.ErrorAs(t, err, &uve)

		var w write
		err = onecode.UnmarshalString("d5:Color2:hie", &w)
		require.ErrorAs(t, err, &uve)
	})

	t.Run("malformed payloads", func(t *testing.T) {
		var m move
		err := onecode.UnmarshalString("d4:Moveli1eee", &m)
		assert.Error(t, err)

		err = onecode.UnmarshalString("d4:Moveli1ei2ei3eee", &m)
		assert.ErrorIs(t, err, onecode.ErrExpectedListEnd)

		var w write
		err = onecode.UnmarshalString("d5:Write2:hi2:hoe", &w)
		assert.ErrorIs(t, err, onecode.ErrExpectedDictionaryEnd)
	})

	t.Run("decoder methods", func(t *testing.T) {
		d := onecode.NewDecoder("d4:Moveli1ei2eee")
		name, err := d.BeginVariant()
		assert.NoError(t, err)
		require.Equal(t, "Move", name)

		var xy []int
		assert.NoError(t, d.Decode(&xy))
		require.Equal(t, []int{1, 2}, xy)
		assert.NoError(t, d.EndVariant())
		require.True(t, d.Done())
	})
}
