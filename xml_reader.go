package formatkit

import (
	"bytes"
	"encoding/xml"
	"io"
)

// xmlScanWindow bounds how much of the document is tokenized while looking
// for the root element.
const xmlScanWindow = 8192

// xhtmlNamespace is the namespace an XHTML root element must declare.
const xhtmlNamespace = "http://www.w3.org/1999/xhtml"

// refineXml tokenizes the document head up to the first start element and
// maps well-known root elements to their dialects. Documents whose root is
// not recognized stay generic XML.
func refineXml(rs io.ReadSeeker, size int64, base Format) Format {
	window := int64(xmlScanWindow)
	if window > size {
		window = size
	}
	head := make([]byte, window)
	if !readAt(rs, 0, head) {
		return base
	}

	dec := xml.NewDecoder(bytes.NewReader(head))
	dec.Strict = false
	for {
		tok, err := dec.RawToken()
		if err != nil {
			return base
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "svg":
			return Svg
		case "rss":
			return Rss
		case "feed":
			return Atom
		case "kml":
			return Kml
		case "gpx":
			return Gpx
		case "html":
			// Only the XHTML sibling is reachable from an XML base;
			// an html root without the namespace stays generic XML.
			if xmlRootNamespace(start) == xhtmlNamespace {
				return Xhtml
			}
			return base
		default:
			return base
		}
	}
}

// xmlRootNamespace extracts the default namespace declared on a raw start
// element. RawToken does not resolve namespaces, so the xmlns attribute is
// inspected directly.
func xmlRootNamespace(start xml.StartElement) string {
	for _, attr := range start.Attr {
		if attr.Name.Local == "xmlns" && attr.Name.Space == "" {
			return attr.Value
		}
	}
	return ""
}
