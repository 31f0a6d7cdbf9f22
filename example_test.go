package inst2xsd_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/jacoelho/inst2xsd"
	"github.com/jacoelho/inst2xsd/pkg/instance"
)

func ExampleInfer() {
	doc, err := instance.Parse(strings.NewReader(`<note priority="2"><to>Tove</to><body>Hi</body></note>`), "note.xml")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	opts := inst2xsd.NewOptions().WithEnumerations(inst2xsd.Never())
	res, err := inst2xsd.Infer(context.Background(), []*instance.Document{doc}, opts)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Print(string(res.Schemas[0].Data))
	// Output:
	// <?xml version="1.0" encoding="UTF-8"?>
	// <xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" elementFormDefault="qualified">
	//   <xs:element name="note">
	//     <xs:annotation>
	//       <xs:documentation>Inferred from note.xml</xs:documentation>
	//     </xs:annotation>
	//     <xs:complexType>
	//       <xs:sequence>
	//         <xs:element name="to" type="xs:string"></xs:element>
	//         <xs:element name="body" type="xs:string"></xs:element>
	//       </xs:sequence>
	//       <xs:attribute name="priority" type="xs:byte" use="required"></xs:attribute>
	//     </xs:complexType>
	//   </xs:element>
	// </xs:schema>
}

func ExampleResult_Verify() {
	in := []inst2xsd.Instance{
		{Name: "a.xml", Data: []byte(`<list><n>1</n><n>2</n></list>`)},
		{Name: "b.xml", Data: []byte(`<list><n>3.5</n></list>`)},
	}
	docs := make([]*instance.Document, 0, len(in))
	for _, i := range in {
		doc, err := instance.ParseBytes(i.Name, i.Data)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		docs = append(docs, doc)
	}

	res, err := inst2xsd.Infer(context.Background(), docs, inst2xsd.NewOptions().WithDesign(inst2xsd.SalamiSlice))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if err := res.Verify(in...); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("Inputs are valid")
	// Output: Inputs are valid
}
