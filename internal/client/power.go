package client

import "context"

// PowerOff switches the camera off. Any later call on this client will fail.
func (c *OlympusClient) PowerOff(ctx context.Context) error {
	_, err := c.get(ctx, powerOffPath)
	return err
}
