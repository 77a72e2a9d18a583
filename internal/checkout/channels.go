package checkout

// Channel is one manual payment option: the customer transfers to the
// receiving account shown by the QR code and uploads the receipt.
type Channel struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	QRImage       string `json:"qrImage"`
}

var channels = []Channel{
	{
		ID:            "gcash",
		Name:          "GCash",
		AccountName:   "Solara Shop",
		AccountNumber: "09123456789",
		QRImage:       "/public/images/gcash-qr.png",
	},
	{
		ID:            "maya",
		Name:          "Maya",
		AccountName:   "Solara Shop",
		AccountNumber: "09123456789",
		QRImage:       "/public/images/maya-qr.png",
	},
}

// Channels lists the fixed set of payment channels.
func Channels() []Channel {
	out := make([]Channel, len(channels))
	copy(out, channels)
	return out
}

// ChannelByID resolves a channel id from a submission.
func ChannelByID(id string) (Channel, bool) {
	for _, channel := range channels {
		if channel.ID == id {
			return channel, true
		}
	}
	return Channel{}, false
}
