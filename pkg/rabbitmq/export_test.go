package rabbitmq

// NewClientWithChannel builds a Client around a fake channel for tests.
func NewClientWithChannel(ch channel, queue string) *Client {
	return &Client{channel: ch, queue: queue}
}
