// Package formatkit identifies file formats from content, the way the
// `file` command does, but as a library with a typed catalog.
//
// Detection is a two-phase pipeline. First the leading bytes of the
// content are matched against an immutable registry of byte signatures;
// when several signatures match, the most specific one wins. Second, when
// the match is a generic container (ZIP, Compound File Binary, ISO Base
// Media, EBML, ASF, PE, PDF, RIFF, SQLite, XML, or plain text) and the
// input is seekable, a bounded container reader inspects internal
// structure to refine the result to a concrete sub-format, for example
// ZIP to EPUB or Compound File Binary to a legacy Word document.
//
// Detection never fails on content: unrecognized bytes yield [Unknown]
// and zero-length content yields [Empty]. Errors are reported only for
// I/O failures.
//
// # Basic Usage
//
//	format, err := formatkit.FromFile("report.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(format.Name())      // "Office Open XML Document"
//	fmt.Println(format.MediaType()) // "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
//
//	format = formatkit.FromBytes([]byte("%PDF-1.4 ..."))
//
//	format, err = formatkit.FromReader(resp.Body)
//
// # Custom Limits
//
// A [Detector] carries the sampling and recursion limits. The package
// functions use a shared detector with the defaults:
//
//	d := formatkit.NewDetector()
//	d.MaxReadSize = 4096
//	d.DisableRefinement = true
//	format := d.FromBytes(data)
//
// Limits can also come from the environment with the FORMATKIT_ prefix
// via [GetConfig] and [Config.Detector].
//
// # Trees and Watching
//
// [DetectTree] detects every file under a root accepted by a [Selector],
// and a [Watcher] re-detects files as they are created or modified:
//
//	sel, _ := formatkit.Glob("**/*.bin")
//	matches, err := formatkit.DetectTree(ctx, "/data", sel)
//
//	w, _ := formatkit.NewWatcher()
//	w.Add("/incoming")
//	for d := range w.Events() {
//	    fmt.Println(d.Path, d.Format)
//	}
//
// # Error Handling
//
// I/O failures are wrapped in [DetectError] with the operation and path:
//
//	_, err := formatkit.FromFile("missing.bin")
//	if formatkit.IsNotExist(err) {
//	    // file does not exist
//	}
package formatkit
