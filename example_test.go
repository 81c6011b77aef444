package onecode_test

import (
	"fmt"
	"log"

	"github.com/chaisql/onecode"
)

type User struct {
	ID    uint64 `onecode:"user_id"`
	Name  string
	Email string `onecode:",omitempty"`
	Roles []string
}

func Example() {
	data, err := onecode.Marshal(User{ID: 10, Name: "foo", Roles: []string{"admin"}})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(data))

	var u User
	err = onecode.Unmarshal(data, &u)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%+v\n", u)

	// Output:
	// d7:user_idi10e4:name3:foo5:rolesl5:adminee
	// {ID:10 Name:foo Email: Roles:[admin]}
}

func ExampleUnmarshalString() {
	var v any
	err := onecode.UnmarshalString("d4:tagsl1:a1:be5:counti-1ee", &v)
	if err != nil {
		log.Fatal(err)
	}

	m := v.(map[string]any)
	fmt.Println(m["tags"], m["count"])

	// Output:
	// [a b] -1
}

type Shape interface {
	onecode.Enum
}

type Circle struct {
	Radius uint32
}

func (Circle) OneCodeVariant() (string, onecode.VariantKind) {
	return "Circle", onecode.NewtypeVariant
}

type Rectangle struct {
	Width, Height uint32
}

func (Rectangle) OneCodeVariant() (string, onecode.VariantKind) {
	return "Rectangle", onecode.StructVariant
}

func ExampleWithVariants() {
	data, err := onecode.Marshal([]Shape{Circle{Radius: 2}, Rectangle{Width: 3, Height: 4}})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(data))

	var shapes []Shape
	err = onecode.Unmarshal(data, &shapes, onecode.WithVariants(Circle{}, Rectangle{}))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%+v\n", shapes)

	// Output:
	// ld6:Circlei2eed9:Rectangled5:widthi3e6:heighti4eeee
	// [{Radius:2} {Width:3 Height:4}]
}

func ExampleDict() {
	d := onecode.NewDict().Add("z", 1).Add("a", 2)

	data, err := onecode.Marshal(d)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(data))

	// Output:
	// d1:zi1e1:ai2ee
}

func ExampleToJSON() {
	data, err := onecode.ToJSON([]byte("d4:name4:kiwi4:tagsl5:greenee"))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(data))

	// Output:
	// {"name":"kiwi","tags":["green"]}
}
