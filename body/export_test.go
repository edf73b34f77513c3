package body

// ResolveIn exposes the resolver over an arbitrary precedence list.
var ResolveIn = resolve

// NewMarkerFamily returns a family whose body only records its prefix.
func NewMarkerFamily(prefix string) Family {
	return Family{
		Prefix: prefix,
		build:  func(string, Params) Body { return Body{"family": prefix} },
	}
}
