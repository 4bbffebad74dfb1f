package discount

type Kind string

const (
	KindNone       Kind = "none"
	KindVoucher    Kind = "voucher"
	KindMembership Kind = "membership"
	KindManual     Kind = "manual"
)

func (k Kind) String() string {
	return string(k)
}
