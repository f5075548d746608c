package countdown

func (c *Countdown) SetIDGenerator(newID func() string) {
	c.newID = newID
}
