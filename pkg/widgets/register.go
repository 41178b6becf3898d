package widgets

import "github.com/go-drift/sdui/pkg/registry"

// Register installs the full widget catalog into r.
func Register(r *registry.Registry) {
	registerContainer(r)
	registerFlex(r)
	registerText(r)
	registerIcon(r)
	registerImage(r)
	registerButton(r)
	registerPadding(r)
	registerSizedBox(r)
	registerSpacer(r)
	registerDivider(r)
	registerScroll(r)
}

func init() {
	Register(registry.Default())
}
