package host

import (
	"github.com/dop251/goja"

	"github.com/famomatic/nowplaying/metadata"
)

// construct backs `new MediaMetadata(init)`.
func (h *Host) construct(call goja.ConstructorCall) *goja.Object {
	rec := metadata.New(h.toInit(call.Argument(0)))
	if err := h.bind(call.This, rec); err != nil {
		panic(h.vm.NewGoError(err))
	}
	return nil
}

// toInit converts a MediaMetadataInit dictionary. undefined and null mean
// all defaults, unknown members are ignored, and members are converted
// with ToString.
func (h *Host) toInit(v goja.Value) metadata.Init {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return metadata.Init{}
	}
	obj, ok := v.(*goja.Object)
	if !ok {
		panic(h.vm.NewTypeError("Failed to construct 'MediaMetadata': parameter 1 is not of type 'MediaMetadataInit'"))
	}
	return metadata.Init{
		Title:  member(obj, "title"),
		Artist: member(obj, "artist"),
		Album:  member(obj, "album"),
	}
}

func member(obj *goja.Object, name string) string {
	v := obj.Get(name)
	if v == nil || goja.IsUndefined(v) {
		return ""
	}
	return v.String()
}

// bind hangs rec off obj and defines the title/artist/album accessors.
func (h *Host) bind(obj *goja.Object, rec *metadata.Record) error {
	if err := obj.DefineDataPropertySymbol(h.recordKey, h.vm.ToValue(rec), goja.FLAG_FALSE, goja.FLAG_FALSE, goja.FLAG_FALSE); err != nil {
		return err
	}
	fields := []struct {
		name string
		get  func() string
		set  func(string)
	}{
		{"title", rec.Title, rec.SetTitle},
		{"artist", rec.Artist, rec.SetArtist},
		{"album", rec.Album, rec.SetAlbum},
	}
	h.objects[rec] = obj
	for _, f := range fields {
		get, set := f.get, f.set
		getter := h.vm.ToValue(func(goja.FunctionCall) goja.Value {
			return h.vm.ToValue(get())
		})
		setter := h.vm.ToValue(func(call goja.FunctionCall) goja.Value {
			set(call.Argument(0).String())
			return goja.Undefined()
		})
		if err := obj.DefineAccessorProperty(f.name, getter, setter, goja.FLAG_FALSE, goja.FLAG_TRUE); err != nil {
			return err
		}
	}
	return nil
}

// recordOf returns the record behind a MediaMetadata object, or nil.
func (h *Host) recordOf(obj *goja.Object) *metadata.Record {
	if obj == nil {
		return nil
	}
	v := obj.GetSymbol(h.recordKey)
	if v == nil || goja.IsUndefined(v) {
		return nil
	}
	rec, _ := v.Export().(*metadata.Record)
	return rec
}

// objectFor returns the MediaMetadata object for rec, wrapping records
// that were built outside this host in a fresh one.
func (h *Host) objectFor(rec *metadata.Record) (*goja.Object, error) {
	if obj, ok := h.objects[rec]; ok {
		return obj, nil
	}
	obj := h.vm.NewObject()
	if proto, ok := h.ctor.Get("prototype").(*goja.Object); ok {
		if err := obj.SetPrototype(proto); err != nil {
			return nil, err
		}
	}
	if err := h.bind(obj, rec); err != nil {
		return nil, err
	}
	return obj, nil
}
